/*
Package ntl is a small number theoretic library for Fully Homomorphic Encryption.
It provides in the ring package a pure Go implementation of the forward and inverse
number theoretic transforms over 61-bit prime fields and of the negacyclic polynomial
product they accelerate, along with the helpers to generate NTT-friendly parameters.
*/
package ntl
