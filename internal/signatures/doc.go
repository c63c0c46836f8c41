// Package signatures holds the ordered catalogue of secret signatures:
// fixed provider-token shapes, key-block headers, credentialed connection
// strings, and generic assignment rules with placeholder suppression.
// Catalogue order is part of the contract: the first matching entry
// decides the reported category.
package signatures
