/*
Package orm provides an easy to use db wrapper.

Entities are protobuf messages stored in named buckets. A bucket prefixes every
key with its name, so many buckets can share a single KVStore. Sequences
provide monotonically increasing keys whose byte order matches their numeric
order, which means that iterating a bucket keyed by a sequence returns the
entities in creation order.
*/
package orm
