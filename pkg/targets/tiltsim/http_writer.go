package tiltsim

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ChuckGl/simferm/pkg/data"
	"github.com/valyala/fasthttp"
)

const httpClientName = "simferm"

// HTTPWriterConfig is the configuration used to create an HTTPWriter.
type HTTPWriterConfig struct {
	// Host of the Tilt-Sim device, in form "192.168.254.62" or
	// "192.168.254.62:8080".
	Host string

	// Color names the Tilt on the Tilt-Sim device that receives readings.
	Color string

	// Debug label for more informative errors.
	DebugInfo string
}

// HTTPWriter is a Writer that pushes readings to a Tilt-Sim HTTP server.
type HTTPWriter struct {
	client fasthttp.Client

	c         HTTPWriterConfig
	urlPrefix string
}

// NewHTTPWriter returns a new HTTPWriter from the supplied HTTPWriterConfig.
func NewHTTPWriter(c HTTPWriterConfig) *HTTPWriter {
	return &HTTPWriter{
		client: fasthttp.Client{
			Name: httpClientName,
		},

		c:         c,
		urlPrefix: "http://" + c.Host + "/setTilt?name=" + url.QueryEscape(c.Color) + "&active=on",
	}
}

var methodGet = []byte("GET")

func (w *HTTPWriter) initializeReq(req *fasthttp.Request, s *data.Sample) {
	// Tilt-Sim takes updates as a GET with the reading in the query string.
	req.Header.SetMethodBytes(methodGet)
	req.Header.SetRequestURI(fmt.Sprintf("%s&sg=%.4f&temp=%.1f", w.urlPrefix, s.Gravity, s.Temperature))
}

func (w *HTTPWriter) executeReq(req *fasthttp.Request, resp *fasthttp.Response) (int64, error) {
	start := time.Now()
	err := w.client.Do(req, resp)
	lat := time.Since(start).Nanoseconds()
	if err == nil {
		sc := resp.StatusCode()
		if sc < fasthttp.StatusOK || sc >= fasthttp.StatusMultipleChoices {
			err = fmt.Errorf("[DebugInfo: %s] Invalid write response (status %d): %s", w.c.DebugInfo, sc, resp.Body())
		}
	}
	return lat, err
}

// WriteReading pushes the given Sample to the Tilt-Sim server described in
// the Writer's HTTPWriterConfig. It returns the latency in nanoseconds and
// any error received while sending the reading over HTTP, or it returns a
// new error if the HTTP response isn't as expected.
func (w *HTTPWriter) WriteReading(s *data.Sample) (int64, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	w.initializeReq(req, s)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	return w.executeReq(req, resp)
}
