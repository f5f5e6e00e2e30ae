/*
Package runner implements the line-oriented host loop for Butterfly portals.

It acts as the bridge between an engine and a terminal or pipe. The runner
renders the current view, reads one command per line and forwards it to the
engine through pluggable handlers.

# Key Components

  - Runner: The loop that renders, reads and dispatches.
  - IOHandler: Decouples how frames are shown and commands are read.
  - TextHandler: A numbered list for interactive CLI usage.
  - JSONHandler: One JSON frame per line for scripted hosts.

# Commands

	<n>         activate the n-th listed button
	as <actor>  switch the viewing actor
	list        render again
	quit, exit  stop (EOF stops too)

# Usage

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if err := runner.Run[string](ctx, r, engine); err != nil {
		log.Fatal(err)
	}
*/
package runner
