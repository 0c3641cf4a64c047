// Package swc is the Go SDK for the SportsWorldCentral fantasy football
// API. It wraps the REST endpoints (leagues, players, performances, teams,
// counts) with typed methods, optional exponential-backoff retry, and
// helpers for downloading the published CSV/Parquet bulk exports.
//
// Construct a client from a Config, either built directly or loaded from
// SWC_* environment variables:
//
//	cfg, err := swc.ConfigFromEnv()
//	if err != nil {
//		log.Fatal(err)
//	}
//	client, err := swc.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	players, err := client.ListPlayers(ctx, swc.ListPlayersParams{
//		LastName: swc.String("Mahomes"),
//	})
//
// Failed calls surface as *swc.TransportError (network) or *swc.StatusError
// (non-2xx); with backoff enabled both classes are retried until the
// configured time budget is exhausted and the last error is returned.
package swc
