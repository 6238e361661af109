/*
Package observability provides Prometheus instrumentation for the fasim engine.

Metrics are fed by the engine lifecycle hooks, so any host (CLI, HTTP server,
MCP server) gets the same counters by registering Metrics.Hooks().
*/
package observability
