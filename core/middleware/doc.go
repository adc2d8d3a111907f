// Package middleware contains HTTP middleware for the preview server.
//
// # Components
//
//   - Auth: API key validation on the X-API-Key header (fiber keyauth).
//   - RayID: A request id per incoming request (fiber requestid), stored in the
//     context under logger.RayIDKey and echoed in the X-Ray-ID response header.
package middleware
