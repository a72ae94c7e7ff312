// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"sync/atomic"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"leb.io/hrff"

	"leb.io/primetools/internal/logger"
	"leb.io/primetools/internal/siginfo"
	"leb.io/primetools/primelist"
)

// chunk is the number of primes per list in binary output.
const chunk = 1 << 14

func addOutputFlags(c *cobra.Command, o *options) {
	c.Flags().BoolVar(&o.count, "count", false, "Print only the number of primes")
	c.Flags().BoolVar(&o.digest, "digest", false, "Print the count, last prime and murmur3 digest instead of the list")
	c.Flags().StringVar(&o.format, "format", "text", "List format (text, binary, json)")
}

// A sink receives primes in ascending order and writes them out as the output flags ask.
type sink struct {
	w      *bufio.Writer
	count  bool
	json   bool
	enc    *primelist.Encoder
	buf    []uint64
	dig    *primelist.Digester
	n      uint64
	digits []byte
}

func newSink(w io.Writer, o *options) (*sink, error) {
	s := &sink{w: bufio.NewWriter(w), count: o.count}
	switch {
	case o.digest:
		s.dig = primelist.NewDigester()
	case o.count:
	case o.format == "binary":
		s.enc = primelist.NewEncoder(s.w)
		s.buf = make([]uint64, 0, chunk)
	case o.format == "json":
		s.json = true
		s.buf = []uint64{}
	case o.format == "text":
	default:
		return nil, fmt.Errorf("unknown format %q", o.format)
	}
	return s, nil
}

func (s *sink) add(p uint64) error {
	s.n++
	switch {
	case s.dig != nil:
		s.dig.Add(p)
	case s.count:
	case s.enc != nil:
		s.buf = append(s.buf, p)
		if len(s.buf) == chunk {
			return s.flushChunk()
		}
	case s.json:
		s.buf = append(s.buf, p)
	default:
		s.digits = strconv.AppendUint(s.digits[:0], p, 10)
		s.digits = append(s.digits, '\n')
		_, err := s.w.Write(s.digits)
		return err
	}
	return nil
}

func (s *sink) flushChunk() error {
	if len(s.buf) == 0 {
		return nil
	}
	err := s.enc.Encode(s.buf)
	s.buf = s.buf[:0]
	return err
}

// close writes any summary and flushes.
func (s *sink) close() error {
	switch {
	case s.dig != nil:
		fmt.Fprintf(s.w, "count=%d last=%d digest=%016x\n", s.dig.Count(), s.dig.Last(), s.dig.Sum64())
	case s.count:
		fmt.Fprintf(s.w, "%d\n", s.n)
	case s.enc != nil:
		if err := s.flushChunk(); err != nil {
			return err
		}
	case s.json:
		b, err := gojson.Marshal(s.buf)
		if err != nil {
			return err
		}
		s.w.Write(b)
		s.w.WriteByte('\n')
	}
	return s.w.Flush()
}

// progress counts primes as they go out, for SIGINFO reports from another goroutine.
type progress struct {
	start time.Time
	count atomic.Uint64
	last  atomic.Uint64
}

func newProgress() *progress {
	return &progress{start: time.Now()}
}

func (p *progress) add(v uint64) {
	p.count.Add(1)
	p.last.Store(v)
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start)
}

func (p *progress) report(log *logger.Logger, msg string) {
	el := p.elapsed()
	n := p.count.Load()
	rate := hrff.Float64{V: float64(n) / el.Seconds(), U: "primes/sec"}
	log.Infow(msg,
		"primes", fmt.Sprintf("%H", hrff.Int64{V: int64(n), U: ""}),
		"last", p.last.Load(),
		"elapsed", el,
		"rate", fmt.Sprintf("%h", rate),
	)
}

// watch logs p each time SIGINFO arrives until stop is called.
func (p *progress) watch(log *logger.Logger) (stop func()) {
	return siginfo.SetHandler(func() { p.report(log, "progress") })
}
