// Package batch analyzes every document in a set of directories and writes
// one report per document.
//
// Discover lists the documents and derives each report path; a Processor then
// analyzes them with a bounded number of workers. A document that fails is
// recorded in its Outcome and does not stop the rest of the batch.
package batch
