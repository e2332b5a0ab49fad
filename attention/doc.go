// Package attention distributes a fixed per-cycle computational budget
// across competing concerns and adapts its priorities online.
//
// Each registered node carries an attention value — short-term and long-term
// importance, a sticky very-long-term flag, confidence and urgency — folded
// into one scalar priority:
//
//	priority = (STI + LTI) · (1.5 if VLTI) · (1 + confidence) · (1 + urgency)
//
// One Allocate call runs a full cycle, in order:
//
//  1. Apply external performance feedback: values above 0.5 reinforce
//     importance and confidence proportionally to (feedback − 0.5); values
//     at or below 0.5 decay short-term importance.
//  2. Score every node as 0.6·intrinsic attention + 0.4·task requirement and
//     normalize the scores to sum to 1 (no-op when all are zero).
//  3. Split the budget greedily in priority order: desired = priority ·
//     budget, afforded = remaining / processing cost; allocations below the
//     minimum threshold are dropped, not recorded.
//  4. Append each allocation to the node's bounded activation history.
//  5. Hebbian-update every directed edge whose endpoints are both active
//     above the activity threshold, with decay, clamped to [-1, 1].
//  6. Decay attention: short-term importance and urgency fast, long-term
//     importance more slowly.
//
// The allocator is single-writer: a cycle mutates the node table and must
// complete before the next cycle reads it, because the Hebbian step depends
// on the full allocation set of the same cycle. It is not safe for
// concurrent use.
//
// Unknown node ids in requirement or feedback maps are ignored, never fatal.
// An empty node table or an all-zero priority vector degrades to an empty
// allocation.
package attention
