package nsg

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/secnet-tools/nsg-report/pkg/models/domain"
)

// Explorer lists the network security groups of the configured subscription.
// The inventory feeds the export subject selection; analysis itself happens
// in the external analysis service.
type Explorer interface {
	ListSecurityGroups(ctx context.Context) ([]domain.NSGRef, error)
}

type explorer struct {
	factory *armnetwork.ClientFactory
}

func NewExplorer(cfg *Config) (Explorer, error) {
	factory, err := armnetwork.NewClientFactory(cfg.SubscriptionID, cfg.Credentials, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create network client factory: %w", err)
	}
	return &explorer{factory: factory}, nil
}

func (e *explorer) ListSecurityGroups(ctx context.Context) ([]domain.NSGRef, error) {
	client := e.factory.NewSecurityGroupsClient()

	var refs []domain.NSGRef
	pager := client.NewListAllPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list security groups: %w", err)
		}
		for _, sg := range page.Value {
			if sg == nil || sg.Name == nil {
				continue
			}
			ref := domain.NSGRef{Name: *sg.Name}
			if sg.Location != nil {
				ref.Location = *sg.Location
			}
			if sg.ID != nil {
				ref.ResourceGroup = resourceGroupFromID(*sg.ID)
			}
			refs = append(refs, ref)
		}
	}
	return refs, nil
}

// resourceGroupFromID pulls the resource group segment out of a fully
// qualified Azure resource ID.
func resourceGroupFromID(id string) string {
	parts := strings.Split(id, "/")
	for i := 0; i < len(parts)-1; i++ {
		if strings.EqualFold(parts[i], "resourceGroups") {
			return parts[i+1]
		}
	}
	return ""
}
