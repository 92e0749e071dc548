/*
Package cli provides command-line utilities for the ganymede command.

Output Formatting:

Command results render as text, JSON or CSV:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

CSV output requires the data to implement TableMarshaler, which the catalog
record views do.

Progress Reporting:

Scans over large directory trees report progress:

	progress := cli.NewProgressReporter(os.Stderr)
	progress.Start(totalFiles)
	progress.Update(done)
	progress.Finish()

Signal Handling:

Watch mode shuts down cleanly on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
*/
package cli
