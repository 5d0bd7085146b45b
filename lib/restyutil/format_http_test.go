package restyutil

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatRequestBody(t *testing.T) {
	require.Equal(t, "<NO BODY>", formatRequestBody(nil))

	req, err := http.NewRequest(http.MethodGet, "http://localhost/results", nil)
	require.NoError(t, err)
	require.Equal(t, "<NO BODY>", formatRequestBody(req))

	// resty installs a GetBody that returns no reader for empty bodies
	req.GetBody = func() (io.ReadCloser, error) { return nil, nil }
	require.Equal(t, "<NO BODY>", formatRequestBody(req))

	req, err = http.NewRequest(http.MethodPost, "http://localhost/results", strings.NewReader("reg=1210311101"))
	require.NoError(t, err)
	require.Equal(t, "reg=1210311101", formatRequestBody(req))
}

func TestFormatHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Add("User-Agent", "resultsdb")
	headers.Add("Accept", "text/html")
	headers.Add("Accept", "*/*")
	require.Equal(t, "Accept: text/html\nAccept: */*\nUser-Agent: resultsdb", formatHeaders(headers))
}
