package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/spf13/cobra"
)

func hostMain(command *cobra.Command, arguments []string) error {
	info, err := host.Info()
	if err != nil {
		return errors.Wrap(err, "unable to query host information")
	}
	fmt.Printf("Host: %s\n", info.Hostname)
	fmt.Printf("Platform: %s %s (%s)\n", info.Platform, info.PlatformVersion, info.OS)
	fmt.Printf("Kernel: %s %s\n", info.KernelVersion, info.KernelArch)
	return nil
}

var hostCommand = &cobra.Command{
	Use:   "host",
	Short: "Show the platform the policy audit is run on",
	Run:   mainify(hostMain),
}
