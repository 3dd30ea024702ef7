package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	compat "github.com/wnxd/microdbg-compat"
	"github.com/wnxd/microdbg-compat/kernel"
)

// invoke calls the entry point bound to name with no arguments and describes
// the outcome the way a C caller would observe it.
func invoke(log *zap.Logger, sys *kernel.Syscall, name string) (string, error) {
	call := sys.Symbol(name)
	if call == nil {
		return "", errors.Errorf("unknown symbol %q", name)
	}
	ctx := compat.NewContext()
	r := int64(call(ctx))
	log.Debug("invoked", zap.String("symbol", name), zap.Int64("ret", r))
	if r == -1 {
		errno := ctx.Errno()
		return fmt.Sprintf("%s() = -1 %s (%s)", name, errno.Name(), errno.Error()), nil
	}
	return fmt.Sprintf("%s() = %d", name, r), nil
}

func callMain(command *cobra.Command, arguments []string) error {
	if len(arguments) == 0 {
		return errors.New("no symbols specified")
	}

	log := zap.NewNop()
	if callConfiguration.debug {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return errors.Wrap(err, "unable to create logger")
		}
		defer log.Sync()
	}

	sys := kernel.NewSyscall()
	for _, name := range arguments {
		line, err := invoke(log, sys, name)
		if err != nil {
			return err
		}
		fmt.Println(line)
	}
	return nil
}

var callCommand = &cobra.Command{
	Use:   "call <symbol>...",
	Short: "Invoke entry points by symbol name and show their result",
	Run:   mainify(callMain),
}

var callConfiguration struct {
	// debug enables debug logging of each invocation.
	debug bool
}

func init() {
	flags := callCommand.Flags()
	flags.SortFlags = false
	flags.BoolVar(&callConfiguration.debug, "debug", false, "Enable debug logging")
}
