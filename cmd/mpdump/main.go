// Command mpdump parses a multipart/form-data body and prints the resulting form as JSON.
//
//	mpdump -boundary XYZ request.body
//	curl ... | mpdump -content-type 'multipart/form-data; boundary=XYZ' -store ./uploads
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	jsoniter "github.com/json-iterator/go"

	"github.com/gobeaver/filekit/driver/memory"
	"github.com/indigo-web/multipart"
	"github.com/indigo-web/multipart/body"
	"github.com/indigo-web/multipart/config"
	"github.com/indigo-web/multipart/form"
	"github.com/indigo-web/multipart/status"
)

var (
	contentType = flag.String("content-type", "", "Content-Type header value of the body")
	boundary    = flag.String("boundary", "", "boundary token, used if -content-type is omitted")
	chunked     = flag.Bool("chunked", false, "the body is chunk-encoded")
	bufferSize  = flag.Int("buffer", 4096, "read buffer size")
	checksum    = flag.String("checksum", string(config.NoChecksum), "checksum algorithm of files: none, xxhash or blake2b")
	store       = flag.String("store", "", "directory to store files into. Files are kept in memory if omitted")
	inline      = flag.Bool("inline", false, "keep files inline in the output instead of the storage")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("mpdump: ")

	ct := *contentType
	if len(ct) == 0 {
		if len(*boundary) == 0 {
			log.Fatal("either -content-type or -boundary must be set")
		}

		ct = "multipart/form-data; boundary=" + *boundary
	}

	var src io.Reader = os.Stdin
	if flag.NArg() > 0 {
		file, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}

		defer file.Close()
		src = file
	}

	cfg := config.Default()
	cfg.Body.ReadBufferSize = *bufferSize
	cfg.Body.Form.Checksum = config.ChecksumAlgorithm(*checksum)

	var opts []form.Option
	switch {
	case len(*store) > 0:
		opts = append(opts, form.WithStorage(dirStorage(*store)))
	case !*inline:
		opts = append(opts, form.WithStorage(memory.New()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	b := body.New(body.NewClient(src, make([]byte, cfg.Body.ReadBufferSize)), cfg.Body)
	b.Init(body.Unsized, *chunked)

	f, err := multipart.ParseBody(ctx, cfg, b, ct, opts...)
	if err != nil {
		log.Fatalf("%d %s: %s", status.CodeOf(err), status.Text(status.CodeOf(err)), err)
	}

	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(f); err != nil {
		log.Fatal(err)
	}
}
