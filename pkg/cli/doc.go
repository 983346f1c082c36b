/*
Package cli provides command-line utilities shared by the ocpicheck command.

Output formatting:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, results); err != nil {
		return err
	}

Signal handling for long-running commands:

	ctx := cli.SetupSignalHandler()
	// ctx is canceled on SIGINT/SIGTERM

Progress reporting for batch validation:

	progress := cli.NewProgressReporter(os.Stderr)
	progress.Start(len(files))
	for _, f := range files {
		// validate f
		progress.Advance(f)
	}
	progress.Finish()
*/
package cli
