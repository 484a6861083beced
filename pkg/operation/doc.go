/*
Package operation implements the rewrites unitytweak applies to a Unity project.

	+-------------+      +-------------+
	|  textures   |      |  stripping  |
	| (walk root) |      | (one file)  |
	+------+------+      +------+------+
	       |                    |
	       +---------+----------+
	                 |
	          +------+------+
	          | text.Rewrite|
	          +------+------+
	                 |
	          +------+------+
	          | status.Store|
	          +-------------+

🎯 Operations:
- textures: walks the texture root in lexical order and turns crunched
  compression on in every texture importer meta file
- stripping: replaces the empty managed stripping level map in the project
  settings with one entry per platform

Both are idempotent: a second run finds nothing to replace and writes nothing.

⚡ Failures:
By default the first file that cannot be read or written aborts the
operation. With continue_on_error each failure is printed, tracked, and the
operation goes on; the failures come back joined once it is done.

🏃 Runner:
OperationRunner runs operations one after another, or concurrently with
async. Files inside a single operation are always handled in order.

🔍 Example:

	opts := operation.Options{Config: cfg, Files: status.New(status.Options{}), Logger: logger}
	runner := operation.NewRunner(zerolog.Ctx(ctx), cfg.Async)
	err := runner.Run(ctx, operation.NewTextureOperation(opts), operation.NewStrippingOperation(opts))
*/
package operation
