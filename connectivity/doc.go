// Package connectivity answers the two connectivity questions the rewiring
// engine asks: is the graph (strongly or weakly) connected, and which
// reciprocal pairs around an agent are bridges whose removal would
// disconnect it.
//
// Both are built on package bfs. A hypothetical removal of the pair u⇄v is a
// bfs edge filter, so bridge detection reads the live graph without cloning
// it and independent candidates can be checked in parallel.
//
//	IsStronglyConnected(g)               // forward + backward reach from one root
//	IsWeaklyConnected(g)                 // undirected reach from one root
//	Check(g, Strong|Weak)
//	Reciprocal(g, agent, candidates)     // keep candidates with both edges
//	DetectBridges(g, agent, candidates)  // reciprocal candidates that are cuts
package connectivity
