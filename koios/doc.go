// Package koios provides a client for the Koios Cardano indexing REST API.
//
// Every remote endpoint is described once in a static table (method, path and
// declared parameters). A single dispatcher builds requests from that table and
// every call settles into the same Outcome envelope, whatever stage it failed at.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Endpoint table: one read-only descriptor per Koios operation
//   - Client: the dispatcher, plus one thin method per endpoint
//   - Transport: the HTTP seam; HTTPTransport is the default
//   - Normalize: the single place failures are classified
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	client, err := koios.NewClient(koios.MainnetURL, logger,
//		koios.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	out := client.EpochInfo(ctx, koios.Params{
//		"_epoch_no":           koios.String("300"),
//		"_include_next_epoch": koios.Bool(false),
//	})
//	if out.Error != nil {
//		log.Fatal(out.Error)
//	}
//
//	out = client.TxInfo(ctx, koios.Params{
//		"_tx_hashes": koios.Strings("abc", "def"),
//	}, koios.WithExtraQuery("&select=tx_hash,block_height"))
//
// GET endpoints put parameters in the query string as "&name=value" in declared
// order; POST endpoints send them as a JSON body. WithExtraQuery appends a raw
// PostgREST filter verbatim.
//
// # Error Handling
//
// A failed call carries a *ClientError whose Kind is one of:
//
//   - KindError: the server replied with a non-2xx status
//   - KindNoResponse: the request was sent but no reply arrived (timeouts,
//     resets, cancellation after send)
//   - KindBadRequest: the call failed before sending (invalid parameters,
//     unknown endpoint, cancellation before send)
//
// Missing required parameters fail locally as KindBadRequest; no request is
// made. The original failure stays available through Cause and errors.As:
//
//	var perr *koios.ParamError
//	if errors.As(out.Error, &perr) {
//		// invalid call
//	}
//
// The client never retries, caches or paginates.
package koios
