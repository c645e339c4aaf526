// Package buffer implements the line-editing buffer behind the prompt:
// text and cursor management, completion sessions, inline suggestions,
// and history navigation. The buffer performs no terminal I/O; key
// handlers mutate it and the renderer reads it back out.
package buffer
