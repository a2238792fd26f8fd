// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides the HTTP front end shared by partgraph services.
//
// A Server mounts caller-supplied handlers behind a fixed middleware chain
// and adds the system endpoints every deployment needs:
//
//   - GET /health reports liveness.
//   - GET /ready reports readiness. It fails until the server is listening and
//     any configured ReadyCheck passes.
//   - GET /metrics exposes Prometheus metrics.
//   - GET / lists the mounted routes unless a custom root handler is set.
//
// Each handler is wrapped, outermost first, with request metrics, API version
// negotiation, request ID propagation, panic recovery, token bucket rate
// limiting (golang.org/x/time/rate) and request logging.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("partgraphd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/parts": h.HandleParts,
//	    }),
//	)
//	if err := s.Run(ctx, loadCatalog); err != nil {
//	    slog.Error("server exited", "error", err)
//	}
//
// Run blocks until SIGINT, SIGTERM or a task error, then shuts down within
// Config.ShutdownTimeout.
//
// # Errors
//
// Failures are written as ErrorResponse JSON. WriteErrorFromErr maps a
// pkg/errors StructuredError code to the HTTP status:
//
//	INVALID_REQUEST     400
//	NOT_FOUND           404
//	METHOD_NOT_ALLOWED  405
//	RATE_LIMIT_EXCEEDED 429
//	UNAVAILABLE         503
//	TIMEOUT             504
//	anything else       500
//
// # Configuration
//
// PORT overrides the listen port (default 8080). SHUTDOWN_TIMEOUT_SECONDS
// overrides the graceful shutdown window.
package server
