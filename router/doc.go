// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the contest API.

# Endpoints

	GET     /                   - Service info
	GET     /health             - Backend probe and config echo
	POST    /submit             - Accept a submission
	OPTIONS /submit             - CORS preflight (204)
	GET     /submissions/count  - Total persisted submissions
	GET     /submissions/backup - Newest-first listing, max 1000

NewRouter wires the handlers over the storage controller and wraps the mux
in the CORS and security-header middleware.
*/
package router
