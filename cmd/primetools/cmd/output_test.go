// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"leb.io/primetools/internal/logger"
)

func TestSinkCountWinsOverFormat(t *testing.T) {
	var buf bytes.Buffer
	s, err := newSink(&buf, &options{count: true, format: "binary"})
	require.NoError(t, err)
	for _, p := range []uint64{2, 3, 5} {
		require.NoError(t, s.add(p))
	}
	require.NoError(t, s.close())
	assert.Equal(t, "3\n", buf.String())
}

func TestSinkEmptyDigest(t *testing.T) {
	var buf bytes.Buffer
	s, err := newSink(&buf, &options{digest: true})
	require.NoError(t, err)
	require.NoError(t, s.close())
	assert.Contains(t, buf.String(), "count=0 last=0 digest=")
}

func TestProgressReport(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := newProgress()
	for _, v := range []uint64{2, 3, 5, 7} {
		p.add(v)
	}
	p.report(logger.NewWithCore(core), "progress")

	require.Equal(t, 1, logs.Len())
	e := logs.All()[0]
	assert.Equal(t, "progress", e.Message)
	fields := e.ContextMap()
	assert.Equal(t, uint64(7), fields["last"])
	assert.Contains(t, fields["rate"], "primes/sec")
}
