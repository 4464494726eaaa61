// Package inventory provides the availability-check contract the storefront
// consults before allowing checkout to proceed.
//
// Checker is the consumed interface: given a batch of item identifiers it
// returns per-item stock levels. Client implements Checker over HTTP against
// the upstream inventory endpoint, collapsing concurrent identical checks into
// a single request.
//
// Availability is the caller-side view of the last successful check. Items
// absent from a successful response are reported as unknown, never as in
// stock, and any failed refresh clears the previously shown state so stale
// availability is never displayed.
package inventory
