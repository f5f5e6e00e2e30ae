/*
Package observability provides tools for monitoring the Butterfly engine.

It adapts Prometheus collectors and structured logging to the engine's
lifecycle hooks, so every render, actor change and click can be counted or
audited without the engine knowing about either.
*/
package observability
