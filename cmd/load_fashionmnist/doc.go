// Package main provides a program that prints the versions of the software it is built with and
// loads the FashionMNIST train set into the "data" directory, downloading it when it is absent.
// MNIST can be loaded the same way with --dataset mnist.
package main
