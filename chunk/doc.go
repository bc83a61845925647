// Package chunk splits a YAML stream into one raw byte span per
// document, preserving each document's bytes exactly.
//
// [Chunker] drives a boundary-event source (by default stream.Scanner)
// over a [CaptureReader] that records every byte the event source
// consumes. Document start and end offsets from the events are turned
// into trim and take operations on the capture, so memory is bounded by
// the largest single document.
//
// # Example
//
//	ch := chunk.New(r)
//	defer ch.Close()
//	for {
//	    doc, err := ch.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // doc holds one document's bytes
//	}
package chunk
