/*
Package status defines the outcome of processing one target file in a rename run.

🎯 Outcomes:
  - Skip: nothing exists at the path, the run continues
  - Updated: content changed and was written back
  - Unchanged: no rule matched, the file was not touched

🖨️ Each outcome prints as exactly one line, "<LABEL>: <path>", where LABEL is
SKIP, UPDATED or NO CHANGE. A finished run prints "Done!" last.

🔍 Example:

	var sum status.Summary
	for _, r := range results {
		sum.Add(r)
		fmt.Println(status.Line(r.Status, r.Path))
	}
	fmt.Println(status.DoneLine)
*/
package status
