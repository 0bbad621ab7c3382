package main

import (
	"fmt"

	"github.com/mgnsk/intrusive"
)

type (
	byPriority struct{}
	byOwner    struct{}
)

// Task is linked into a run queue and into its owner's list at the same time.
type Task struct {
	Name  string
	queue intrusive.Node[byPriority]
	owner intrusive.Node[byOwner]
}

func main() {
	var (
		runQueue intrusive.List[Task, byPriority]
		alice    intrusive.List[Task, byOwner]
	)

	tasks := []*Task{{Name: "build"}, {Name: "test"}, {Name: "deploy"}}
	for _, t := range tasks {
		defer t.queue.Release()
		defer t.owner.Release()

		runQueue.PushBack(t)
		alice.PushBack(t)
	}

	// An urgent task jumps the queue.
	runQueue.SpliceCell(runQueue.Begin(), &runQueue, runQueue.IteratorOf(tasks[2]))

	// The task removes itself from its owner without knowing the list.
	intrusive.Remove[byOwner](tasks[1])

	for t := range runQueue.All() {
		fmt.Println("queued:", t.Name)
	}

	for t := range alice.All() {
		fmt.Println("owned:", t.Name)
	}

	// Drain the queue in batches.
	var batch intrusive.List[Task, byPriority]
	for !runQueue.Empty() {
		n := runQueue.ExtractFront(&batch, 2)
		fmt.Println("batch of", n)
		for t, ok := batch.TryPopFront(); ok; t, ok = batch.TryPopFront() {
			fmt.Println("running:", t.Name)
		}
	}

	alice.Clear()
}
