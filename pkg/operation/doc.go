/*
Package operation implements the rename run.

	+-------------+
	|  Operation  |
	|  (rename)   |
	+------+------+
	       |
	+------+------+      +-------------+
	|   Replacer  |      |  Workspace  |
	| (transform) |      |   (files)   |
	+-------------+      +-------------+

🔄 Flow, for each configured path in order:
 1. Missing path: SKIP, continue
 2. Read the whole file
 3. Apply every rule that applies to the path, in order, every occurrence
 4. Same bytes: NO CHANGE. Otherwise write the whole file back: UPDATED

After the last path the run prints "Done!". Any error other than a missing
path stops the run where it is; earlier files keep their new content and the
final line is not printed.

Processing is strictly sequential. The context is checked between files.
*/
package operation
