// Package algebra provides the operator and monoid capability bundles used by
// the range structures of cpkit (fenwick, segtree, sparsetable).
//
// What & Why
//
//	Range structures never look at the values they store; they only combine
//	them. Everything they need is therefore an operator and, for most query
//	paths, an identity element:
//
//	  • Op[T]: a binary operator a ⊕ b.
//	  • Monoid[T]: an operator plus its identity element (Neutral).
//
// Algebraic laws (contract, not verified):
//
//   - Associativity:  (a ⊕ b) ⊕ c == a ⊕ (b ⊕ c)
//   - Identity:       Neutral() ⊕ a == a ⊕ Neutral() == a
//   - Idempotence:    a ⊕ a == a (only required by sparsetable.Table.Query)
//
// Range decomposition is correct only if these laws hold. Commutativity is
// never assumed: every structure combines partial results in index order.
//
// Operators provided:
//
//	| operator | associative | idempotent | identity                 |
//	|----------|-------------|------------|--------------------------|
//	| Sum      | yes         | no         | 0                        |
//	| Xor      | yes         | no         | 0                        |
//	| Min      | yes         | yes        | greatest value of T      |
//	| Max      | yes         | yes        | least value of T         |
//	| And      | yes         | yes        | all bits set (^0)        |
//	| Or       | yes         | yes        | 0                        |
//	| GCD      | yes         | yes        | 0                        |
//
// Min and Max have no universal identity for an arbitrary ordered type, so
// MinMonoid and MaxMonoid take the bound explicitly.
package algebra
