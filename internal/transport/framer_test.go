package transport_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/alif-lang/als/internal/transport"
)

func writeFrame(buf *bytes.Buffer, body string) {
	fmt.Fprintf(buf, "Content-Length: %d\r\n\r\n%s", len(body), body)
}

func TestReadRequestNotificationResponseErrorResponse(t *testing.T) {
	var in bytes.Buffer
	writeFrame(&in, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`)
	writeFrame(&in, `{"jsonrpc":"2.0","method":"initialized","params":{}}`)
	writeFrame(&in, `{"jsonrpc":"2.0","id":1,"result":{"ok":true}}`)
	writeFrame(&in, `{"jsonrpc":"2.0","id":2,"error":{"code":-32601,"message":"no such method"}}`)

	var out bytes.Buffer
	f := transport.NewFramer(&in, &out)

	msg, err := f.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Kind != transport.KindRequest || msg.Method != "initialize" {
		t.Fatalf("got %+v, want request/initialize", msg)
	}

	msg, err = f.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Kind != transport.KindNotification || msg.Method != "initialized" {
		t.Fatalf("got %+v, want notification/initialized", msg)
	}

	msg, err = f.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Kind != transport.KindResponse {
		t.Fatalf("got %+v, want response", msg)
	}

	msg, err = f.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Kind != transport.KindErrorResponse || msg.Error.Code != -32601 {
		t.Fatalf("got %+v, want error response with code -32601", msg)
	}

	if _, err := f.Read(); err != transport.ErrConnectionClosed {
		t.Fatalf("got %v, want ErrConnectionClosed at stream end", err)
	}
}

func TestReadRecoversFromMalformedJSONAndKeepsReading(t *testing.T) {
	var in bytes.Buffer
	writeFrame(&in, `not json at all`)
	writeFrame(&in, `{"jsonrpc":"2.0","id":7,"method":"ping","params":null}`)

	var out bytes.Buffer
	f := transport.NewFramer(&in, &out)

	msg, err := f.Read()
	if err != nil {
		t.Fatalf("expected parse error to be absorbed internally, got %v", err)
	}
	if msg.Method != "ping" {
		t.Fatalf("expected recovery to land on the next valid message, got %+v", msg)
	}
	if !bytes.Contains(out.Bytes(), []byte(`"code":-32700`)) {
		t.Fatalf("expected a parse-error response to have been written, got %q", out.String())
	}
}

func TestReadRejectsAmbiguousShape(t *testing.T) {
	var in bytes.Buffer
	writeFrame(&in, `{"jsonrpc":"2.0","id":3,"method":"foo","result":{}}`)
	writeFrame(&in, `{"jsonrpc":"2.0","id":4,"method":"bar","params":null}`)

	var out bytes.Buffer
	f := transport.NewFramer(&in, &out)

	msg, err := f.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Method != "bar" {
		t.Fatalf("expected the ambiguous first message to be skipped, got %+v", msg)
	}
	if !bytes.Contains(out.Bytes(), []byte(`"code":-32600`)) {
		t.Fatalf("expected an invalid-request response, got %q", out.String())
	}
}

func TestReadRejectsOversizedMessage(t *testing.T) {
	var in bytes.Buffer
	fmt.Fprintf(&in, "Content-Length: %d\r\n\r\n", transport.MaxMessageSize+1)

	f := transport.NewFramer(&in, &bytes.Buffer{})
	if _, err := f.Read(); err != transport.ErrOversizedMessage {
		t.Fatalf("got %v, want ErrOversizedMessage", err)
	}
}

func TestReadRejectsInvalidHeader(t *testing.T) {
	in := bytes.NewBufferString("Garbage-Header-No-Colon\r\n\r\n")
	f := transport.NewFramer(in, &bytes.Buffer{})
	if _, err := f.Read(); err != transport.ErrInvalidHeader {
		t.Fatalf("got %v, want ErrInvalidHeader", err)
	}
}

func TestReadRejectsZeroLengthContent(t *testing.T) {
	in := bytes.NewBufferString("Content-Length: 0\r\n\r\n")
	f := transport.NewFramer(in, &bytes.Buffer{})
	if _, err := f.Read(); err != transport.ErrInvalidHeader {
		t.Fatalf("got %v, want ErrInvalidHeader for Content-Length: 0", err)
	}
}

func TestReadRejectsMissingJSONRPCVersion(t *testing.T) {
	var in bytes.Buffer
	writeFrame(&in, `{"id":5,"method":"foo","params":null}`)
	writeFrame(&in, `{"jsonrpc":"2.0","id":6,"method":"bar","params":null}`)

	var out bytes.Buffer
	f := transport.NewFramer(&in, &out)

	msg, err := f.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Method != "bar" {
		t.Fatalf("expected the missing-version message to be skipped, got %+v", msg)
	}
	if !bytes.Contains(out.Bytes(), []byte(`"code":-32600`)) {
		t.Fatalf("expected an invalid-request response, got %q", out.String())
	}
}

func TestWriteResponseRoundTrips(t *testing.T) {
	var out bytes.Buffer
	f := transport.NewFramer(&bytes.Buffer{}, &out)
	if err := f.WriteResponse(transport.NumberID(9), map[string]any{"ok": true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	back := transport.NewFramer(&out, &bytes.Buffer{})
	msg, err := back.Read()
	if err != nil {
		t.Fatalf("unexpected error reading back what was written: %v", err)
	}
	if msg.Kind != transport.KindResponse || !msg.ID.Equal(transport.NumberID(9)) {
		t.Fatalf("got %+v, want response with id 9", msg)
	}
}
