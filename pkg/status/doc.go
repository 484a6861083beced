/*
Package status owns file access and per-file bookkeeping for unitytweak.

	            +-------------+
	            |  Operation  |
	            +------+------+
	                   |
	      +------------+------------+
	      |                         |
	+-----+-----+             +-----+-----+
	|   Files   |             |  Tracker  |
	| read/write|             | (summary) |
	+-----------+             +-----------+

🎯 Purpose:
- Reads whole files and writes them back in place
- Keeps the original file mode on rewrite
- Optional .bak copy before overwriting, optional dry run
- Records what happened to every file the operations touched

🔄 Flow:
 1. Operation reads a file through the Store
 2. Operation decides whether the content changed
 3. Store writes it back (temp file + rename) unless DryRun
 4. Operation tracks the outcome; the CLI prints a Summary at the end

🔍 Example:

	files := status.New(status.Options{Backup: true})
	content, err := files.ReadFile(ctx, "ProjectSettings/ProjectSettings.asset")
	if err != nil {
		return err
	}
	// ... transform ...
	if err := files.WriteFile(ctx, "ProjectSettings/ProjectSettings.asset", updated); err != nil {
		return err
	}
	files.Track(ctx, status.FileInfo{Path: path, Status: status.StatusModified})
*/
package status
