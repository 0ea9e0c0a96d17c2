/*
Package observability exposes ordercheck classification counters as
Prometheus metrics.

Metrics implements runner.Observer, so the same instance can be attached to a
CLI run or to the HTTP server and scraped from /metrics.
*/
package observability
