package twitter

import (
	"fmt"
	"io"
	"sort"

	"github.com/google/go-querystring/query"
)

// RequestContent is the payload of a call: either KeyValuePairs or
// StreamContent.
type RequestContent interface {
	requestContent()
}

// ParameterValue is the value of a Param: either Text or File.
type ParameterValue interface {
	parameterValue()
}

// Text is a plain string parameter value.
type Text string

// File is a file parameter value. Files can only be sent as multipart bodies,
// which this package does not encode.
type File struct {
	Reader io.Reader
}

func (Text) parameterValue() {}
func (File) parameterValue() {}

// Param is one named parameter.
type Param struct {
	Name  string
	Value ParameterValue
}

// KeyValuePairs is an ordered parameter list. It is sent as the query string
// for GET, DELETE and HEAD and as a form body otherwise.
type KeyValuePairs []Param

func (KeyValuePairs) requestContent() {}

// Add appends a text parameter.
func (kv KeyValuePairs) Add(name, value string) KeyValuePairs {
	return append(kv, Param{Name: name, Value: Text(value)})
}

// AddFile appends a file parameter.
func (kv KeyValuePairs) AddFile(name string, r io.Reader) KeyValuePairs {
	return append(kv, Param{Name: name, Value: File{Reader: r}})
}

func (kv KeyValuePairs) hasFile() bool {
	for _, p := range kv {
		if _, ok := p.Value.(File); ok {
			return true
		}
	}
	return false
}

// textPairs returns the parameters as encoder pairs. It panics on a File
// value; callers must check hasFile first.
func (kv KeyValuePairs) textPairs() []Pair {
	pairs := make([]Pair, 0, len(kv))
	for _, p := range kv {
		switch v := p.Value.(type) {
		case Text:
			pairs = append(pairs, Pair{Key: p.Name, Value: string(v)})
		default:
			panic(fmt.Sprintf("twitter: parameter %q has non-text value %T", p.Name, p.Value))
		}
	}
	return pairs
}

// Params builds text parameters from alternating names and values.
func Params(kv ...string) KeyValuePairs {
	if len(kv)%2 != 0 {
		panic("twitter: Params called with an odd number of arguments")
	}
	out := make(KeyValuePairs, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		out = out.Add(kv[i], kv[i+1])
	}
	return out
}

// ParamsFromStruct encodes a struct tagged with `url:"..."` into text
// parameters, sorted by name.
func ParamsFromStruct(v any) (KeyValuePairs, error) {
	vals, err := query.Values(v)
	if err != nil {
		return nil, fmt.Errorf("encode params: %w", err)
	}
	names := make([]string, 0, len(vals))
	for name := range vals {
		names = append(names, name)
	}
	sort.Strings(names)

	var out KeyValuePairs
	for _, name := range names {
		for _, val := range vals[name] {
			out = out.Add(name, val)
		}
	}
	return out, nil
}

// UnknownLength marks a StreamContent whose size is not known up front.
const UnknownLength int64 = -1

// StreamContent is a raw body with a declared media type.
type StreamContent struct {
	ContentType string

	// ContentLength is the exact body size, or UnknownLength to send the
	// body chunked.
	ContentLength int64

	Content io.Reader
}

func (StreamContent) requestContent() {}

// NewStream returns a StreamContent. Pass UnknownLength when the size of r
// is not known.
func NewStream(contentType string, r io.Reader, length int64) StreamContent {
	if length < 0 {
		length = UnknownLength
	}
	return StreamContent{ContentType: contentType, ContentLength: length, Content: r}
}
