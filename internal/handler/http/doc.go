// Package http implements the REST transport of the mood journal.
//
// Every route lives under /api. Public routes (register, login, the shared
// view and the public board) are open; the rest require a session bearer
// token checked by the auth middleware. Errors are answered as
// {"error": "..."} with 400, 401, 403 or 404. Trace ids, access logging and
// gzip compression are applied to every route.
package http
