package main

import (
	"context"
	"fmt"
)

func (cli *commandLine) assign(menteeID, mentorID int) error {
	mentee, err := cli.mentorshipSvc.Assign(context.Background(), menteeID, mentorID)
	if err != nil {
		return err
	}
	fmt.Printf("assigned mentor %d to %s\n", mentorID, mentee.Name)
	return nil
}

func (cli *commandLine) approve(id int, approved bool) error {
	ctx := context.Background()
	if approved {
		mentor, err := cli.mentorshipSvc.Approve(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("approved mentor application of %s\n", mentor.Name)
		return nil
	}
	mentor, err := cli.mentorshipSvc.Reject(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("rejected mentor application of %s\n", mentor.Name)
	return nil
}
