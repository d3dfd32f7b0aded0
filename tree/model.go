package tree

// Sample returns the ten-node demonstration tree. It is a binary search tree,
// so its inorder traversal is ascending.
//
//	            50
//	         /      \
//	       30        70
//	      /  \      /  \
//	    20    40  60    80
//	   /  \               \
//	 10    25              90
func Sample() *Node {
	return &Node{ID: "1", Value: 50,
		Left: &Node{ID: "2", Value: 30,
			Left: &Node{ID: "4", Value: 20,
				Left:  &Node{ID: "8", Value: 10},
				Right: &Node{ID: "9", Value: 25},
			},
			Right: &Node{ID: "5", Value: 40},
		},
		Right: &Node{ID: "3", Value: 70,
			Left: &Node{ID: "6", Value: 60},
			Right: &Node{ID: "7", Value: 80,
				Right: &Node{ID: "10", Value: 90},
			},
		},
	}
}

// Clone returns a deep copy of the subtree rooted at n.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}

	return &Node{ID: n.ID, Value: n.Value, Left: Clone(n.Left), Right: Clone(n.Right)}
}

// Nodes flattens the tree in preorder.
func Nodes(root *Node) []*Node {
	var out []*Node
	var collect func(*Node)
	collect = func(n *Node) {
		if n == nil {
			return
		}
		out = append(out, n)
		collect(n.Left)
		collect(n.Right)
	}
	collect(root)

	return out
}

// Edges lists every parent→child edge in preorder, left before right.
func Edges(root *Node) []Edge {
	var out []Edge
	for _, n := range Nodes(root) {
		for _, c := range [2]*Node{n.Left, n.Right} {
			if c != nil {
				out = append(out, Edge{Link: Link{From: n.ID, To: c.ID}, FromValue: n.Value, ToValue: c.Value})
			}
		}
	}

	return out
}

// Depth returns the number of levels; an empty tree has depth 0.
func Depth(root *Node) int {
	if root == nil {
		return 0
	}

	return 1 + max(Depth(root.Left), Depth(root.Right))
}
