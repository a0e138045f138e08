// Package order contains the Order aggregate and its owned Item entities.
//
// Order is the aggregate root for a customer purchase: it owns its line
// items exclusively, derives total_price from them, and carries the status
// lifecycle. Every mutating operation (adding, updating or removing items)
// recomputes the derived total before returning, so the invariant
//
//	total_price == Σ(item.price × item.quantity)
//
// holds at all observable times. Items never exist outside an Order;
// deleting the Order deletes its items.
//
// Status is a closed enumeration of the four recognized lifecycle values.
// Setting a status validates the value but deliberately does not constrain
// transitions between recognized values.
package order
