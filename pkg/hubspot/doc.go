// Package hubspot provides types, interfaces, and helpers for working with the
// HubSpot CRM v3 API.
//
// # Overview
//
// The hubspot package defines the domain types (Object, Owner, User, Pipeline,
// Property, association batches) and the interfaces for resource-oriented
// clients (ObjectsClient, OwnersClient, AssociationsClient, ...). A concrete
// implementation of these clients is provided by the hsclient package, which
// wires configuration, transport, and authentication. Most consumers should
// import hsclient to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/hublink-io/hubspot-client/pkg/hsclient"
//	  "github.com/hublink-io/hubspot-client/pkg/hubspot"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := hsclient.New(&hubspot.Config{AccessToken: "pat-..."})
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of deals
//	  deals, err := cli.Deals().List(ctx, hubspot.NewQueryParams().WithLimit(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = deals
//	}
//
// # Pagination
//
// HubSpot list endpoints use cursor pagination: the response carries a
// paging.next.link URL which the client follows verbatim. ListAll methods
// follow the chain to exhaustion and return the concatenated results. Search
// endpoints page by offset instead: SearchAll reconstructs the "after" cursor
// from the number of records already retrieved and throttles between pages to
// stay inside HubSpot's rate limits. Searches cannot page past 10,000 results;
// the API rejects deeper cursors and that rejection is surfaced unchanged.
//
// # Errors
//
// API failures are represented by RequestError, which carries the endpoint,
// method, status code, and the parsed HubSpot error body. Helpers such as
// IsNotFound and IsUnauthorized make it easy to branch on common cases.
// Requests issued without a configured token fail with ErrNotAuthenticated
// before any network activity.
package hubspot
