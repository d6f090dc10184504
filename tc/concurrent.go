package tc

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/classfetch/classfetch/model"
)

// maxRosterConcurrency bounds parallel roster fetches so a network admin
// with many classrooms does not stampede the API.
const maxRosterConcurrency = 5

// ChildrenByClassrooms fetches the rosters of several classrooms in
// parallel and merges them into one list. Children enrolled in more than
// one of the classrooms appear once, at their first position; classroom
// order and within-roster order are preserved.
func (c *Client) ChildrenByClassrooms(ctx context.Context, classroomIDs []int64) ([]model.Child, error) {
	if len(classroomIDs) == 0 {
		return nil, nil
	}

	rosters := make([][]model.Child, len(classroomIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxRosterConcurrency)
	for i, id := range classroomIDs {
		g.Go(func() error {
			children, err := c.ListChildren(ctx, ChildQuery{ClassroomID: id})
			if err != nil {
				return err
			}
			rosters[i] = children
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[int64]bool)
	var merged []model.Child
	for _, roster := range rosters {
		for _, child := range roster {
			if child.ID != nil {
				if seen[*child.ID] {
					continue
				}
				seen[*child.ID] = true
			}
			merged = append(merged, child)
		}
	}

	c.logger.Debug().
		Int("classrooms", len(classroomIDs)).
		Int("children", len(merged)).
		Msg("Merged classroom rosters")
	return merged, nil
}
