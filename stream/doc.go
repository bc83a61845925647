// Package stream provides document-boundary events over YAML streams.
//
// An [EventReader] yields [Event] values that mark where documents start
// and end, as absolute byte offsets into the stream it reads. [Scanner]
// is the bundled event source; it recognizes the "---" and "..." marker
// lines, directives, comments, and implicit document starts, without
// parsing document content.
//
// # Example
//
//	sc := stream.NewScanner(r)
//	for {
//	    ev, err := sc.ReadEvent()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // ev.Type, ev.Offset
//	}
package stream
