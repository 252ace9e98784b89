// Package main is the gendata command, a uniform test data generator
// for normalize.
package main
