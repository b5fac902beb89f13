// Package monplan provides the HTTP client for the MonPlan units API.
//
// # Overview
//
// The client is the only code in MUSE that touches the network. It performs
// read-only GET requests against a configurable API root and decodes the
// JSON bodies into Unit values.
//
// # Client Usage
//
//	client, err := monplan.NewClient("https://monplan-api-dev.appspot.com",
//		monplan.WithTimeout(10*time.Second),
//		monplan.WithMetrics(monplan.NewMetrics(reg)),
//	)
//	if err != nil {
//		return err
//	}
//
//	units, err := client.FetchAllUnits(ctx)
//	unit, err := client.FetchUnit(ctx, "FIT2004")
//
// # API Endpoints
//
//   - GET basic/units: the abridged catalog of every unit
//   - GET units/{unitCode}: full details for one unit
//
// Paths are joined onto the API root, so a root with a path prefix such as
// https://host/v1 keeps the prefix.
//
// # Error Handling
//
// Every failure is reported as ErrRemoteCall: transport errors, cancelled
// contexts, non-2xx statuses, and bodies that are not the expected JSON
// shape. The underlying cause is logged at debug level and then dropped;
// callers only learn that the call failed.
//
// # Metrics
//
// When built WithMetrics, the client counts requests per endpoint and
// outcome, and records their latency.
package monplan
