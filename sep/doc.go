// Package sep turns two co-registered renderings of one page — the full
// rendering and a background-only rendering of the same scene — into the
// color-layer streams of a DjVu separated file.
//
// A pixel is foreground exactly when the two renderings disagree at its
// coordinate. Each quantizer variant applies that classification and
// emits one of two wire formats: a bitonal run-length mask (R4) or a
// paletted color run stream (R6). Alongside the stream, every call
// reports a sampled background color and two monotonic flags recording
// whether any true foreground and any true background was seen.
//
// The variants are a closed set selected once at configuration time with
// New. All of them are stateless: one instance serves any number of
// pages. Encoding is deterministic; identical inputs and configuration
// produce byte-identical streams.
//
// This package is encode-only. Rendering, file handling and the document
// container that consumes the streams belong to its callers.
package sep
