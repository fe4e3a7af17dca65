// Package checker is the scorecheck engine: it models one verifiable network
// assertion as a Check and runs batches of them concurrently.
//
// Architecture overview:
//
//   - New validates a check's target (bare IPv4 literal, port 0-65535) and
//     keeps its type and positional arguments verbatim.
//   - ParseArgs turns the positional arguments into a typed Args variant per
//     check type; arity problems surface here, before any network traffic.
//   - Check.Execute dispatches the parsed Args through one type switch onto a
//     Prober method (Ping, Fetch, Content, PageExists, DNS, SMB, FTP).
//     Reserved types (ad, dhcp, smtp, pop3, imap, ntp) fail as NotImplemented.
//   - Runner fans a batch out over a bounded errgroup, optionally rate
//     limited and retrying network errors, and returns exactly one
//     BatchResult per check.
//
// Failure semantics:
//
// Reachability, DNS, SMB and FTP probes fold every network error into a false
// result: a scored service being down is an answer, not an error. The HTTP
// family (url, content, pageExists) instead returns NetworkError, so reports
// distinguish "the page was wrong" from "the page could not be fetched".
// Every error carries a Kind (see KindOf) and the name and type of its check.
package checker
