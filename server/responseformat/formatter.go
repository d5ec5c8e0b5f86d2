package responseformat

import (
	"encoding/json"
	"net/http"

	"github.com/vmihailenco/msgpack/v5"
)

const FORMAT_QUERY_ARG = "format"
const FORMAT_MSGPACK = "msgpack"

const CONTENT_TYPE_JSON = "application/json"
const CONTENT_TYPE_MSGPACK = "application/x-msgpack"

// Formatter writes API payloads as JSON, or MessagePack when ?format=msgpack.
type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

// WantsMsgPack reports whether the request asked for MessagePack.
func WantsMsgPack(req *http.Request) bool {
	return req.URL.Query().Get(FORMAT_QUERY_ARG) == FORMAT_MSGPACK
}

// WriteResponse encodes data with status 200 in the requested format.
func (f *Formatter) WriteResponse(w http.ResponseWriter, req *http.Request, data any) error {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if WantsMsgPack(req) {
		return f.writeMsgPack(w, data)
	}
	return f.writeJSON(w, data)
}

// WriteRawJSON writes an already encoded JSON payload. MessagePack requests
// decode it first, so NaN values travel as nil in both formats.
func (f *Formatter) WriteRawJSON(w http.ResponseWriter, req *http.Request, jsonBytes []byte) error {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if WantsMsgPack(req) {
		var data any
		if err := json.Unmarshal(jsonBytes, &data); err != nil {
			return err
		}
		return f.writeMsgPack(w, data)
	}

	w.Header().Set("Content-Type", CONTENT_TYPE_JSON)
	_, err := w.Write(jsonBytes)
	return err
}

// WriteError writes {"error": msg} with the given status, always as JSON.
func (f *Formatter) WriteError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", CONTENT_TYPE_JSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (f *Formatter) writeJSON(w http.ResponseWriter, data any) error {
	w.Header().Set("Content-Type", CONTENT_TYPE_JSON)
	return json.NewEncoder(w).Encode(data)
}

func (f *Formatter) writeMsgPack(w http.ResponseWriter, data any) error {
	w.Header().Set("Content-Type", CONTENT_TYPE_MSGPACK)
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json")
	return encoder.Encode(data)
}
