/*
Package monitoring provides metrics collection for the zstat commands.

# Overview

Each process owns a private Prometheus registry. The commands are short
lived, so metrics are not scraped; they are written once on exit in the
node exporter textfile format when METRICS_TEXTFILE is set.

# Features

- Evaluation counts by routine and method
- Non-converged evaluations and rejected arguments
- Record outcomes of the normalize filter
- Command runs and duration

# Usage

	metrics := monitoring.NewMetrics()

	// Count every evaluation
	eval := numerics.NewEvaluator(cfg, logger).WithObserver(metrics)

	// Time a command
	timer := monitoring.NewTimer(metrics, "normalize")
	// ... run ...
	timer.Stop("success")

	// Flush
	_ = metrics.WriteTextfile("/var/lib/node_exporter/zstat.prom")
*/
package monitoring
