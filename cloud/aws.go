// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package cloud

import (
	"fmt"
	"os"
	"os/user"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/ec2rolecreds"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"
)

const AWSProfile = "terragen"

// getAWSSession prefers the shared credentials file and falls back to the
// instance role.
func getAWSSession(region string) (*session.Session, error) {
	var creds *credentials.Credentials
	if path, ok := sharedCredentials(); ok {
		creds = credentials.NewSharedCredentials(path, AWSProfile)
	} else {
		metadata, err := session.NewSession(aws.NewConfig())
		if err != nil {
			return nil, err
		}
		creds = credentials.NewCredentials(&ec2rolecreds.EC2RoleProvider{Client: ec2metadata.New(metadata)})
	}
	return session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: creds,
	})
}

func sharedCredentials() (string, bool) {
	if path := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); path != "" {
		return path, true
	}
	usr, err := user.Current()
	if err != nil {
		return "", false
	}
	path := fmt.Sprintf("%s/.aws/credentials", usr.HomeDir)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}
