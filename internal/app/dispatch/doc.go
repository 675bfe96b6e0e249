// Package dispatch implements the command dispatch bridge: any number of
// goroutines submit typed commands, and a single run loop executes them one
// at a time against the todo repository.
//
// The run loop is the only code that calls the repository, so repository
// calls never overlap. Each submission carries its own one-shot reply channel
// and a correlation id; the loop answers every command it dequeues with a
// tagged Response (the post-command todo list or an error).
//
//	bridge := dispatch.New(repo, dispatch.WithLogger(logger))
//	bridge.Start(ctx)
//	defer bridge.Shutdown(ctx)
//
//	todos, err := bridge.AddTodo(ctx, "write the docs")
package dispatch
