// Package textfile implements storage for the file being rewritten.
//
// The FileRepository reads the whole file as text and applies rewritten
// content back in place through go-update, preserving the file's permission
// bits and exposing a Repository interface that the services depend on.
package textfile
