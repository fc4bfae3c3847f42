/*
Package mllab implements classic supervised learning algorithms from
first principles, for teaching purposes. The tree-based learners, a
single decision tree for classification or regression, a random
forest and an AdaBoost ensemble, all share the indexed tree engine of
the tree subpackage: the learners find splits on the data subsets the
engine exposes and feed them back through its purity-gated node
updates, while the engine owns addressing, traversal and partitioning.
*/
package mllab
