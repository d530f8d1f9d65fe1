// Package cli provides the interactive store administration client.
//
// It wires the session, the API services and a line-oriented REPL. On
// start the stored session is validated; the prompt then shows the signed-in
// user and accepts commands until "exit" or end of input.
//
// Anonymous commands: register, login, exit.
// Signed-in commands: products, show, addproduct, editproduct,
// deleteproduct, categories, addcategory, editcategory, deletecategory,
// dashboard, featured, profile, editprofile, logout, exit.
//
// A failing command prints "Error: <message>" and the REPL keeps going.
package cli
