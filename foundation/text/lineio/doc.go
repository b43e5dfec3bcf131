// Package lineio reads lines into String values and writes String values
// to streams.
//
//	r := lineio.NewReader(os.Stdin, lineio.WithTrimCR(true))
//	for line := range r.Lines() {
//		lineio.WriteLine(os.Stdout, line.Trimmed())
//	}
//	if err := r.Err(); err != nil {
//		return err
//	}
package lineio
