// Package structs implements generic helpers around pools of reusable buffers.
package structs
