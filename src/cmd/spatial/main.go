package main

import (
	"os"
	"path/filepath"

	"k8s.io/klog"

	"spatial/src/cli"
)

func main() {
	defer klog.Flush()

	basename := filepath.Base(os.Args[0])
	command := cli.NewCmdSpatial(basename, os.Stdout, os.Stderr)
	if err := command.Execute(); err != nil {
		klog.Errorf("%s: %v", basename, err)
		klog.Flush()
		os.Exit(1)
	}
}
