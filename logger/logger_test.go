package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/viant/colorvp/logger"
)

var _ = Describe("Logger", func() {
	Describe("New", func() {
		It("writes text records", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf))
			l.Info("palette constructed", "height", 12)

			Expect(buf.String()).To(ContainSubstring("palette constructed"))
			Expect(buf.String()).To(ContainSubstring("height=12"))
		})

		It("filters debug unless enabled", func() {
			var buf bytes.Buffer
			logger.New(logger.WithWriter(&buf)).Debug("hidden")
			Expect(buf.String()).To(BeEmpty())

			logger.New(logger.WithWriter(&buf), logger.WithDebug(true)).Debug("shown")
			Expect(buf.String()).To(ContainSubstring("shown"))
		})

		It("writes JSON records", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf), logger.WithJSON(true))
			l.Info("quantized", "name", "Radical Red")

			var parsed map[string]any
			Expect(json.Unmarshal(buf.Bytes(), &parsed)).To(Succeed())
			Expect(parsed["msg"]).To(Equal("quantized"))
			Expect(parsed["name"]).To(Equal("Radical Red"))
		})

		It("writes pretty records", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf), logger.WithPretty(true))
			l.Info("pretty output")

			Expect(buf.String()).To(ContainSubstring("pretty output"))
		})

		It("fans out to multiple writers", func() {
			var a, b bytes.Buffer
			logger.New(logger.WithWriters(&a, &b)).Info("multi")

			Expect(a.String()).To(ContainSubstring("multi"))
			Expect(b.String()).To(ContainSubstring("multi"))
		})
	})

	Describe("Nop", func() {
		It("discards everything", func() {
			l := logger.Nop()
			Expect(l.Handler().Enabled(context.Background(), slog.LevelError)).To(BeFalse())
			Expect(func() { l.With("k", "v").Info("msg") }).NotTo(Panic())
		})
	})
})
