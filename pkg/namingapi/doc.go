// Package namingapi serves the numeral naming engine over HTTP.
//
// All handlers share one numeral.Cache guarded by a mutex, so abbreviations
// handed out by the API are the same ones the CLI listing prints.
//
// # Endpoints
//
//	GET /names/{n}                    base, name and abbreviation of n
//	GET /names?from=1&count=20        listing entries (format=yaml for YAML)
//	GET /rationals/{num}/{den}        name of the fractional base num/den
//	GET /symbols/{text}?greater_than_six=true&one_syllable=true
//	GET /parse?name=dozenal           value of a root base name
//	GET /healthz                      liveness probe
//
// JSON responses use the envelope {"data": ..., "meta": ..., "error": ...}.
// Every response carries an X-Request-ID header; a valid client-supplied id is
// echoed back, otherwise a UUID is generated.
//
// # Usage
//
//	svc := namingapi.NewService(numeral.NewCache(), namingapi.WithMaxListing(500))
//	srv := namingapi.NewServer(cfg.HTTP, log)
//	if err := srv.Run(ctx, namingapi.NewRouter(svc, log)); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// # Error Handling
//
// Malformed numbers and zero denominators answer 400 with code
// "invalid_number". Oversized listings and bases beyond the configured
// magnitude answer 400 "invalid_range". Unknown names answer 404 "unknown_name". Server.Run wraps
// listener failures with ErrStart and shutdown failures with ErrShutdown.
package namingapi
