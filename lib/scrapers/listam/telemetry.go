package listam

import (
	"listam-scraper/lib/restyutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/listam")

// SetRestyInstrumentOutput dumps every http exchange the client makes to
// the given output, useful when debugging selector changes against the
// live site.
func (c *Client) SetRestyInstrumentOutput(out restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.http, tracer, out)
}
