// Package observable provides ordered sequences and value cells that publish
// their mutations to registered observers.
//
// A List is a mutable source sequence. Every structural mutation (insert,
// remove, move, replace, reset) is validated, applied, and then delivered
// synchronously to each observer as a Change. Observers see the source in its
// post-mutation state.
//
// A Projection is a bounded prefix view of a source: after every change it
// holds exactly source[0 .. min(len(source), capacity)). It is maintained
// incrementally from the source's changes and republishes each of its own
// mutations to its observers:
//
//	items := observable.NewList[*Item]()
//	top, err := observable.Attach[*Item](items, 12)
//	if err != nil {
//	    return err
//	}
//	defer top.Detach()
//
//	sub := top.Subscribe(func(ch observable.Change[*Item]) error {
//	    render(ch)
//	    return nil
//	})
//	defer sub.Unsubscribe()
//
// Nothing in this package locks. Callers that mutate a List from several
// goroutines must serialize the mutations themselves, so that each change and
// the notifications it triggers complete before the next mutation starts.
package observable
